package main

import (
	"testing"

	"kapehan/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestBuildModel(t *testing.T) {
	cfg := &config.Config{
		AppEnv:    "test",
		StoreName: "Test Kapehan",
		Currency:  "P",
	}

	m := buildModel(cfg)

	// The wired model should render the grid straight away.
	view := m.View()
	assert.Contains(t, view, "Test Kapehan")
	assert.Contains(t, view, "Category: < Coffee >")
	assert.Contains(t, view, "Americano")
}
