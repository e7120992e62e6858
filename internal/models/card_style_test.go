package models_test

import (
	"testing"

	"github.com/namecard/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCardStyleValid() {
	tests := []struct {
		style models.CardStyle
		valid bool
	}{
		{models.CardStyleClassic, true},
		{models.CardStyleNeon, true},
		{models.CardStyleElegant, true},
		{"", false},
		{"sparkly", false},
		{"Classic", false},
	}

	for _, tt := range tests {
		suite.T().Run(string(tt.style), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.style.Valid())
		})
	}
}

func (suite *TestSuiteStandard) TestCardStyles() {
	styles := models.CardStyles()

	assert.Len(suite.T(), styles, 8)
	for _, style := range styles {
		assert.True(suite.T(), style.Valid())
	}
}
