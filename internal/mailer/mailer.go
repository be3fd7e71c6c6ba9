// Package mailer delivers HTML mail over SMTP.
package mailer

import (
	"io"

	"gopkg.in/gomail.v2"

	"lunchscan/internal/metrics"
)

// Client sends mail through a configured SMTP relay.
type Client struct {
	dialer *gomail.Dialer
	from   string
}

// New creates a mailer client.
func New(host string, port int, user, pass, from string) *Client {
	return &Client{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   from,
	}
}

// Send delivers a plain HTML message.
func (c *Client) Send(to, subject, html string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", c.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)
	return c.send(m)
}

// SendWithInlinePNG delivers an HTML message with a PNG embedded under the
// given cid, referenced from the body as <img src="cid:...">.
func (c *Client) SendWithInlinePNG(to, subject, html, cid string, png []byte) error {
	m := gomail.NewMessage()
	m.SetHeader("From", c.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)
	m.Embed(cid, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(png)
		return err
	}))
	return c.send(m)
}

func (c *Client) send(m *gomail.Message) error {
	if err := c.dialer.DialAndSend(m); err != nil {
		metrics.MailsTotal.WithLabelValues("error").Inc()
		return err
	}
	metrics.MailsTotal.WithLabelValues("ok").Inc()
	return nil
}
