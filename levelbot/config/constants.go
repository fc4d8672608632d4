package config

import "time"

// UI and display constants
const (
	// Pagination
	BoostsPerPage   = 7
	LeaderboardSize = 10

	// Colors
	ErrorColor   = 0xFF0000
	SuccessColor = 0x00FF00
	InfoColor    = 0x0099FF
	WarningColor = 0xFFAA00

	BackgroundColor   = 0x2B2D31
	EmbedDefaultColor = 0x2B2D31
)

// Database and performance constants
const (
	DefaultQueryTimeout     = 30 * time.Second
	ExportTimeout           = 5 * time.Minute
	CommandExecutionTimeout = 10 * time.Second
	NetworkDialTimeout      = 5 * time.Second

	MaxRetries = 3
)
