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

package matching

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Similarity computes a normalized string similarity score in [0, 1] between
// two names. The comparison is case-insensitive and whitespace-preserving:
// the inputs are lower-cased and otherwise compared as given. The score is
// (maxLen - editDistance) / maxLen over the rune lengths, so 1.0 means the
// lower-cased strings are identical. Two empty strings score 1.0.
//
// Similarity(a, b) == Similarity(b, a) for all inputs.
func Similarity(a, b string) float64 {

	la := strings.ToLower(a)
	lb := strings.ToLower(b)

	maxLen := utf8.RuneCountInString(la)
	if n := utf8.RuneCountInString(lb); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 1.0
	}

	distance := levenshtein.ComputeDistance(la, lb)
	return float64(maxLen-distance) / float64(maxLen)
}
