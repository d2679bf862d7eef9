package service

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomSeatProvider_Generate(t *testing.T) {
	p := NewRandomSeatProvider()
	seats := p.Generate(SeatMapSize)

	require.Len(t, seats, SeatMapSize)
	for i, seat := range seats {
		assert.Equal(t, fmt.Sprintf("%d", i+1), seat.Number)
		assert.False(t, seat.IsSelected)
		assert.Nil(t, seat.PassengerID)
	}
}

func TestRandomPassIssuer_Issue(t *testing.T) {
	p := NewRandomPassIssuer()
	gateRe := regexp.MustCompile(`^A([1-9]|1[0-5])$`)
	timeRe := regexp.MustCompile(`^0[89]:[0-5][0-9]$`)

	for i := 1; i <= 20; i++ {
		pass := p.Issue(i)
		assert.Equal(t, i, pass.ID)
		assert.Regexp(t, gateRe, pass.Gate)
		assert.Regexp(t, timeRe, pass.BoardingTime)
		assert.Regexp(t, fmt.Sprintf("^BP%d", i), pass.QRCode)
		assert.False(t, pass.EmailSent)
	}
}
