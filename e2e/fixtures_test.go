//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// sampleDocument has three sections with distinct first lines
const sampleDocument = `# Introduction
Welcome to the introduction.

# Usage
Run the tool with a file name.

# FAQ
Questions nobody asked yet.
`

// CreateTestWorkspace creates a temporary directory used as $HOME
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteDocument writes a document into the workspace and returns its path
func (tf *TUITestFramework) WriteDocument(name, content string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	path := filepath.Join(tf.workspace, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write document: %w", err)
	}
	return path, nil
}

// StatePath is where the app stores locations for this workspace
func (tf *TUITestFramework) StatePath() string {
	return filepath.Join(tf.workspace, ".state", "onepage", "locations.toml")
}
