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

package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/DavidCapener182/KSSSupplier-sub002/internal/conflicts/model"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/config"
	errors2 "github.com/DavidCapener182/KSSSupplier-sub002/internal/system/errors"
	"github.com/DavidCapener182/KSSSupplier-sub002/internal/system/log"
)

// NotificationClient delivers new-alert notifications to the external
// notification collaborator. Delivery mechanics (email, push, digesting)
// belong to that collaborator; this client only hands over the obligation.
type NotificationClient struct {
	Endpoint   string
	Recipients []string
	HTTPClient *http.Client
}

// alertNotification is the wire payload sent per administrator recipient.
type alertNotification struct {
	Recipient     string  `json:"recipient"`
	EventId       string  `json:"event_id"`
	StaffName     string  `json:"staff_name"`
	LicenseNumber string  `json:"license_number,omitempty"`
	MatchType     string  `json:"match_type"`
	Similarity    float64 `json:"similarity"`
	AlertId       string  `json:"alert_id"`
}

// NewNotificationClient creates a NotificationClient from the service configuration.
func NewNotificationClient(cfg config.Config) *NotificationClient {

	timeout := time.Duration(cfg.Notification.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &NotificationClient{
		Endpoint:   cfg.Notification.Endpoint,
		Recipients: cfg.Notification.AdminRecipients,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// NotifyNewAlert emits one notification event per configured administrator for
// a newly persisted alert. Pre-existing alerts must never be passed here.
func (c *NotificationClient) NotifyNewAlert(alert model.DoubleBookingAlert) error {

	logger := log.GetLogger()

	if c.Endpoint == "" {
		logger.Debug("Notification endpoint is not configured, skipping alert notification.",
			log.String("alert_id", alert.AlertId))
		return nil
	}

	var lastErr error
	for _, recipient := range c.Recipients {
		payload := alertNotification{
			Recipient:     recipient,
			EventId:       alert.EventId,
			StaffName:     alert.StaffName,
			LicenseNumber: alert.LicenseNumber,
			MatchType:     alert.MatchType,
			Similarity:    alert.Similarity,
			AlertId:       alert.AlertId,
		}
		if err := c.post(payload); err != nil {
			logger.Error("Failed to deliver alert notification.",
				log.String("alert_id", alert.AlertId), log.String("recipient", recipient), log.Error(err))
			lastErr = err
		}
	}

	if lastErr != nil {
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:    errors2.NOTIFY_ALERT.Code,
			Message: errors2.NOTIFY_ALERT.Message,
		}, lastErr)
	}
	return nil
}

func (c *NotificationClient) post(payload alertNotification) error {

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	resp, err := c.HTTPClient.Post(c.Endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("notification endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
