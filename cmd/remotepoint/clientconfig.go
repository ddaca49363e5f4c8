package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// serverKey is the entry written under mcpServers.
const serverKey = "remotepoint"

// generateClientConfig creates or updates a Claude Desktop Client config
// file so that it launches this binary. serverConfig, if set, is passed
// through as the -config flag.
func generateClientConfig(outputPath, serverConfig string) error {
	logger := slog.Default()

	if outputPath == "" {
		return errors.New("output path is empty")
	}
	if filepath.Ext(outputPath) != ".json" {
		return fmt.Errorf("config file must have a .json extension: %s", outputPath)
	}
	for _, part := range strings.Split(filepath.ToSlash(outputPath), "/") {
		if part == ".." {
			return fmt.Errorf("config path must not contain '..': %s", outputPath)
		}
	}

	execPath, err := os.Executable()
	if err != nil {
		execPath = os.Args[0]
	}
	absExecPath, err := filepath.Abs(execPath)
	if err != nil {
		absExecPath = execPath
	}

	args := []string{}
	if serverConfig != "" {
		if abs, err := filepath.Abs(serverConfig); err == nil {
			serverConfig = abs
		}
		args = append(args, "-config", serverConfig)
	}

	var config map[string]any
	if data, err := os.ReadFile(outputPath); err == nil {
		if err := json.Unmarshal(data, &config); err != nil {
			logger.Warn("existing config is not valid JSON, will create new", "error", err)
			config = nil
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to read existing config: %w", err)
	}
	if config == nil {
		config = make(map[string]any)
	}

	mcpServers, ok := config["mcpServers"].(map[string]any)
	if !ok {
		mcpServers = make(map[string]any)
		config["mcpServers"] = mcpServers
	}
	mcpServers[serverKey] = map[string]any{
		"command": absExecPath,
		"args":    args,
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(outputPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	// WriteFile keeps the mode of an existing file.
	return os.Chmod(outputPath, 0o600)
}
