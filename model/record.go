package model

// Record is a loosely structured document as returned by the travel-booking
// backend. Field presence is never guaranteed, several fields go by more than
// one name, and values arrive as numbers, strings or nested objects depending
// on which backend version produced them. The dashboard never mutates a
// Record; it only reads fields through tolerant lookups.
type Record map[string]any
