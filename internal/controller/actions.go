package controller

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shenikar/safewalk/internal/bridge"
	"github.com/shenikar/safewalk/internal/models"
)

// MessageKind - тип сообщения экстренному контакту
type MessageKind string

const (
	MessageSafe MessageKind = "safe"
	MessageHelp MessageKind = "help"
)

// Init регистрирует клиента у фонового монитора и запрашивает разрешение на уведомления.
// Без канала к монитору возвращает bridge.ErrChannelUnavailable, локальная
// проверка контрольных точек при этом продолжает работать.
func (c *Controller) Init(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	log := c.log("Init")

	if c.deps.Background == nil {
		c.deps.Status.SetStatus(StatusBackgroundMissing, StyleError)
		log.Warn("Background channel is not available, background alerts disabled")
		return bridge.ErrChannelUnavailable
	}

	c.deps.Status.SetStatus(c.safeModeText(), StyleInfo)

	if c.deps.Permissions == nil {
		return nil
	}
	if perm := c.deps.Permissions.RequestPermission(ctx); perm != models.PermissionGranted {
		c.deps.Status.SetStatus(StatusNotificationsOff, StyleWarning)
		log.WithField("permission", perm).Info("Notifications are disabled")
	}
	return nil
}

// CheckNetwork обновляет строку статуса по доступности сети
func (c *Controller) CheckNetwork(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checkNetwork(ctx)
}

func (c *Controller) checkNetwork(ctx context.Context) {
	if c.deps.Prober != nil {
		if err := c.deps.Prober.Probe(ctx); err != nil {
			c.deps.Status.SetStatus(models.NetworkDownMessage, StyleError)
			return
		}
	}
	c.deps.Status.SetStatus(c.safeModeText(), StyleInfo)
}

// SetContact запоминает адрес экстренного контакта
func (c *Controller) SetContact(contact string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.contact = strings.TrimSpace(contact)
}

// SendMessage отправляет экстренному контакту сообщение "в безопасности" или "нужна помощь".
// Доставка не реализована, сообщение только записывается в лог.
func (c *Controller) SendMessage(kind MessageKind) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Active {
		return ErrSafeModeInactive
	}
	if c.contact == "" {
		c.deps.Status.SetStatus(StatusNoContact, StyleError)
		return ErrNoContact
	}

	var text string
	switch kind {
	case MessageSafe:
		text = "I am safe!"
	case MessageHelp:
		location := "unknown"
		if c.last != nil {
			location = fmt.Sprintf("%s, %s", formatCoord(c.last.Latitude), formatCoord(c.last.Longitude))
		}
		text = "Help me! My location is: " + location
	default:
		return fmt.Errorf("controller: unknown message kind %q", kind)
	}

	c.log("SendMessage").WithField("contact", c.contact).Infof("Sending to %s: %s", c.contact, text)
	c.deps.Status.SetStatus("Message sent: "+text, StyleSuccess)
	return nil
}

// ShareLink копирует ссылку на карту с текущей позицией в буфер обмена
func (c *Controller) ShareLink() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Active {
		return "", ErrSafeModeInactive
	}
	if c.last == nil {
		c.deps.Status.SetStatus(StatusNoLocationToShare, StyleError)
		return "", ErrNoPosition
	}

	link := fmt.Sprintf("https://maps.google.com/?q=%s,%s", formatCoord(c.last.Latitude), formatCoord(c.last.Longitude))
	if c.deps.Clipboard != nil {
		if err := c.deps.Clipboard.WriteText(link); err != nil {
			c.deps.Status.SetStatus(StatusLinkCopyFailed, StyleError)
			return "", fmt.Errorf("controller: could not copy link: %w", err)
		}
	}
	c.deps.Status.SetStatus(StatusLinkCopied, StyleSuccess)
	return link, nil
}

func (c *Controller) safeModeText() string {
	if c.state == Active {
		return StatusActive
	}
	return StatusInactive
}

// formatCoord печатает координату в кратчайшем точном виде
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
