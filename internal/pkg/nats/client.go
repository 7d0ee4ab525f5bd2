package nats

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
)

// Client represents a NATS client for publishing domain events
type Client struct {
	conn *nats.Conn
}

// NewClient creates a new NATS client
func NewClient(url string) (*Client, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	return &Client{conn: conn}, nil
}

// GetConn returns the underlying NATS connection
func (c *Client) GetConn() *nats.Conn {
	return c.conn
}

// IsConnected reports whether the client holds a live connection
func (c *Client) IsConnected() bool {
	return c.conn != nil && c.conn.IsConnected()
}

// Publish sends raw bytes to the specified subject
func (c *Client) Publish(subject string, data []byte) error {
	if err := c.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// PublishJSON marshals the message and sends it to the specified subject
func (c *Client) PublishJSON(subject string, message interface{}) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	return c.Publish(subject, msgBytes)
}

// Subscribe subscribes to a subject and returns a subscription
func (c *Client) Subscribe(subject string, handler nats.MsgHandler) (*nats.Subscription, error) {
	sub, err := c.conn.Subscribe(subject, handler)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to subject: %w", err)
	}
	return sub, nil
}

// Close closes the NATS connection
func (c *Client) Close() {
	if c.conn != nil {
		c.conn.Close()
	}
}
