package ui

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yllada/messages-desktop/common"
)

func TestIconGenerator_Generate(t *testing.T) {
	for name, config := range map[string]IconConfig{
		"online":  DefaultOnlineIconConfig(),
		"offline": DefaultOfflineIconConfig(),
	} {
		t.Run(name, func(t *testing.T) {
			data, err := NewIconGenerator(config).Generate()
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, common.TrayIconSize, img.Bounds().Dx())
			assert.Equal(t, common.TrayIconSize, img.Bounds().Dy())
		})
	}
}

func TestIconGenerator_EncodeFailure(t *testing.T) {
	data, err := NewIconGenerator(IconConfig{Size: 0}).Generate()
	assert.Error(t, err)
	assert.Nil(t, data)
	assert.Nil(t, generateIcon(IconConfig{Size: 0}))
}
