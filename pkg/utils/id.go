package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID returns a short random identifier, used to correlate the log
// lines of a single report generation.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
