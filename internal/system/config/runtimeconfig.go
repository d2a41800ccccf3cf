/*
 * Copyright (c) 2026, KSS Supplier Ltd. (https://www.ksssupplier.co.uk).
 *
 * KSS Supplier Ltd. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package config

import "sync"

// SCSRuntime holds the runtime configuration for the staffing conflict service.
type SCSRuntime struct {
	SCSHome string `yaml:"scs_home"`
	Config  Config `yaml:"config"`
}

var (
	runtimeConfig *SCSRuntime
	once          sync.Once
)

// InitializeSCSRuntime initializes the SCSRuntime configuration.
func InitializeSCSRuntime(scsHome string, config *Config) error {

	once.Do(func() {
		runtimeConfig = &SCSRuntime{
			SCSHome: scsHome,
			Config:  *config,
		}
	})

	return nil
}

// GetSCSRuntime returns the SCSRuntime configuration.
func GetSCSRuntime() *SCSRuntime {

	if runtimeConfig == nil {
		panic("SCSRuntime is not initialized")
	}
	return runtimeConfig
}

// OverrideSCSRuntime replaces the runtime configuration. Used by tests.
func OverrideSCSRuntime(conf Config) {
	runtimeConfig = &SCSRuntime{
		Config: conf,
	}
}
