// internal/database/db_test.go
package database

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDatabase_Open(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	// Verify file exists
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestDatabase_Settings(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	// Missing key reports not found, not an error
	_, found, err := db.GetSetting("keyboard.custom_bindings")
	if err != nil {
		t.Fatalf("GetSetting failed: %v", err)
	}
	if found {
		t.Error("Expected missing key to report not found")
	}

	// Save setting
	err = db.SaveSetting("keyboard.custom_bindings", `{"new-terminal":{"key":"t","ctrlKey":true}}`)
	if err != nil {
		t.Fatalf("SaveSetting failed: %v", err)
	}

	// Retrieve setting
	value, found, err := db.GetSetting("keyboard.custom_bindings")
	if err != nil {
		t.Fatalf("GetSetting failed: %v", err)
	}
	if !found {
		t.Fatal("Expected key to be found after save")
	}
	if value != `{"new-terminal":{"key":"t","ctrlKey":true}}` {
		t.Errorf("Unexpected value: %s", value)
	}

	// Overwrite keeps a single row
	err = db.SaveSetting("keyboard.custom_bindings", `{}`)
	if err != nil {
		t.Fatalf("SaveSetting overwrite failed: %v", err)
	}
	value, _, err = db.GetSetting("keyboard.custom_bindings")
	if err != nil {
		t.Fatalf("GetSetting after overwrite failed: %v", err)
	}
	if value != `{}` {
		t.Errorf("Expected '{}', got '%s'", value)
	}
}

func TestDatabase_DeleteSetting(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	if err := db.SaveSetting("theme", "dark"); err != nil {
		t.Fatalf("SaveSetting failed: %v", err)
	}
	if err := db.DeleteSetting("theme"); err != nil {
		t.Fatalf("DeleteSetting failed: %v", err)
	}

	_, found, err := db.GetSetting("theme")
	if err != nil {
		t.Fatalf("GetSetting failed: %v", err)
	}
	if found {
		t.Error("Expected key to be gone after delete")
	}

	// Deleting a missing key is a no-op
	if err := db.DeleteSetting("theme"); err != nil {
		t.Errorf("DeleteSetting on missing key failed: %v", err)
	}
}
