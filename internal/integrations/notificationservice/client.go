package notificationservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с NotificationService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента NotificationService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// NotifyScheduleChanged отправляет событие изменения расписания площадки
func (c *Client) NotifyScheduleChanged(ctx context.Context, event *ScheduleChangedEvent) error {
	url := fmt.Sprintf("%s/internal/notifications/schedule-changed", c.baseURL)

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal event: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrServiceDegraded, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted, http.StatusNoContent:
		return nil
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}

// NotifyScheduleChangedWithGracefulDegradation отправляет событие с graceful degradation
// Недоступность NotificationService не блокирует редактирование расписания:
// ошибка логируется уровнем ERROR и не возвращается наверх как блокирующая
func (c *Client) NotifyScheduleChangedWithGracefulDegradation(ctx context.Context, event *ScheduleChangedEvent) error {
	c.log.Info("Notifying schedule change for venue_id=%d", event.VenueID)

	if err := c.NotifyScheduleChanged(ctx, event); err != nil {
		c.log.Error("NotificationService unavailable, schedule change for venue_id=%d not delivered: %v",
			event.VenueID, err)
		return fmt.Errorf("%w: venue_id=%d, error=%v", ErrServiceDegraded, event.VenueID, err)
	}

	c.log.Info("Schedule change notification delivered for venue_id=%d", event.VenueID)
	return nil
}
