package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stylegen/internal/core/domain"
)

func TestAssetNamer_ID(t *testing.T) {
	namer := domain.NewAssetNamer("/pkg", domain.DefaultPackageName)

	id, err := namer.ID("/pkg/UIPack/Sprites/x.png")
	require.NoError(t, err)
	assert.Equal(t, "project://database/Packages/nl.kenney.uipack/UIPack/Sprites/x.png", id)
}

func TestAssetNamer_Name(t *testing.T) {
	namer := domain.NewAssetNamer("/pkg/", "com.example.ui")

	ap, err := namer.Name("/pkg/Blue/Default/button_round_blue.png")
	require.NoError(t, err)
	assert.Equal(t, "/pkg/Blue/Default/button_round_blue.png", ap.Path)
	assert.Equal(t, "project://database/Packages/com.example.ui/Blue/Default/button_round_blue.png", ap.ID)
}
