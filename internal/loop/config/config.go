// Package config centralizes tunables of the terminal client.
package config

// Max render resolution in terminal cells. Larger terminals get a centred,
// bordered playfield. 192x54 cells is 192x108 pixels, the playfield's 16:9.
const (
	MaxTermWidth  = 192
	MaxTermHeight = 54
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)
