package main

// This file ensures core dependencies are included as direct dependencies in go.mod
import (
	_ "github.com/fsnotify/fsnotify"
	_ "github.com/google/uuid"
	_ "github.com/klauspost/compress/zstd"
	_ "modernc.org/sqlite"
)
