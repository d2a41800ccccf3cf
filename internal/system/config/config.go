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

type AddrConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

type LogConfig struct {
	LogLevel string `yaml:"log_level"`
}

type AuthConfig struct {
	Enabled            bool     `yaml:"enabled"`
	ExpectedAudience   string   `yaml:"expected_audience"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

type DataSourceConfig struct {
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

// DetectionConfig carries the tunables of the double booking scanner.
type DetectionConfig struct {
	// FuzzyNameThreshold is the exclusive lower bound a name similarity
	// score must exceed to be classified as a fuzzy-name match.
	FuzzyNameThreshold float64 `yaml:"fuzzy_name_threshold"`
	// RescanIntervalMinutes is the period of the scheduled full rescan.
	// Zero disables the scheduler.
	RescanIntervalMinutes int `yaml:"rescan_interval_minutes"`
}

// NotificationConfig describes the downstream notification collaborator.
type NotificationConfig struct {
	Endpoint        string   `yaml:"endpoint"`
	AdminRecipients []string `yaml:"admin_recipients"`
	TimeoutSeconds  int      `yaml:"timeout_seconds"`
}

type Config struct {
	Addr         AddrConfig         `yaml:"addr"`
	Log          LogConfig          `yaml:"log"`
	Auth         AuthConfig         `yaml:"auth"`
	DataSource   DataSourceConfig   `yaml:"datasource"`
	Detection    DetectionConfig    `yaml:"detection"`
	Notification NotificationConfig `yaml:"notification"`
}
