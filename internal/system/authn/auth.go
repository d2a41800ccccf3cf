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

package authn

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/config"
	errors2 "github.com/DavidCapener182/KSSSupplier-sub002/internal/system/errors"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/log"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/utils"
)

// Middleware validates the Authorization: Bearer token on every request before
// delegating to next. Token issuance and role enforcement belong to the
// external identity collaborator; this boundary only checks that a token is
// present, well formed, unexpired and aimed at this service.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cfg := config.GetSCSRuntime().Config
		if !cfg.Auth.Enabled {
			next.ServeHTTP(w, r)
			return
		}

		token := extractBearerToken(r)
		if token == "" {
			utils.HandleError(w, unauthorizedError())
			return
		}

		claims, err := ParseJWTClaims(token)
		if err != nil {
			utils.HandleError(w, unauthorizedError())
			return
		}

		if !validateClaims(cfg.Auth.ExpectedAudience, claims) {
			utils.HandleError(w, unauthorizedError())
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ParseJWTClaims parses claims from a JWT without verifying the signature.
// Signature verification is delegated to the gateway in front of this service.
func ParseJWTClaims(tokenString string) (map[string]interface{}, error) {

	logger := log.GetLogger()
	claims := jwt.MapClaims{}
	_, _, err := new(jwt.Parser).ParseUnverified(tokenString, claims)
	if err != nil {
		errMsg := "Error occurred when parsing claims from JWT token."
		logger.Debug(errMsg, log.Error(err))
		serverError := errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.PARSING_ERROR.Code,
			Message:     errors2.PARSING_ERROR.Message,
			Description: errMsg,
		}, err)
		return nil, serverError
	}
	return claims, nil
}

func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// validateClaims ensures the token has the expected audience and has not expired.
func validateClaims(expectedAudience string, claims map[string]interface{}) bool {

	logger := log.GetLogger()

	if expectedAudience != "" {
		audRaw, ok := claims["aud"]
		if !ok {
			logger.Debug("Token does not have an audience claim.")
			return false
		}
		if !audienceMatches(audRaw, expectedAudience) {
			logger.Debug("Token audience claim is not valid.")
			return false
		}
	}

	expRaw, ok := claims["exp"]
	if !ok {
		logger.Debug("Token does not have an expiration time.")
		return false
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		logger.Debug("Token does not have a valid expiration time.", log.Any("exp", expRaw))
		return false
	}
	expUnix := int64(expFloat)
	if expUnix < time.Now().Unix() {
		logger.Debug("Token has expired.", log.String("exp", time.Unix(expUnix, 0).String()))
		return false
	}

	return true
}

func audienceMatches(audRaw interface{}, expected string) bool {
	switch aud := audRaw.(type) {
	case string:
		return aud == expected
	case []interface{}:
		for _, entry := range aud {
			if s, ok := entry.(string); ok && s == expected {
				return true
			}
		}
	}
	return false
}

func unauthorizedError() *errors2.ClientError {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.UNAUTHORIZED.Code,
		Message:     errors2.UNAUTHORIZED.Message,
		Description: errors2.UNAUTHORIZED.Description,
	}, http.StatusUnauthorized)
}
