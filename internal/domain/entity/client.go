package entity

import "time"

// Client representa un cliente de la panadería. Email es opcional pero único.
type Client struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	RegisteredAt time.Time
}
