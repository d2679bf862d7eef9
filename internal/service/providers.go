package service

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/cx-tal-miterani/group-checkin/internal/models"
)

const (
	// SeatMapSize is the number of seats generated per group.
	SeatMapSize = 30
	// seatOccupancyRate is the share of seats pre-occupied at generation.
	seatOccupancyRate = 0.3
	gateCount         = 15
)

// SeatAvailabilityProvider produces the initial seat set for a group. A real
// inventory system can satisfy this contract without touching the flow logic.
type SeatAvailabilityProvider interface {
	Generate(count int) []models.Seat
}

// BoardingPassIssuer synthesizes a boarding pass for a passenger.
type BoardingPassIssuer interface {
	Issue(passengerID int) models.BoardingPass
}

// RandomSeatProvider marks ~30% of seats as occupied at random, standing in
// for an external seat inventory.
type RandomSeatProvider struct {
	rng *rand.Rand
}

func NewRandomSeatProvider() *RandomSeatProvider {
	return &RandomSeatProvider{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (p *RandomSeatProvider) Generate(count int) []models.Seat {
	seats := make([]models.Seat, count)
	for i := range seats {
		seats[i] = models.Seat{
			Number:     fmt.Sprintf("%d", i+1),
			IsOccupied: p.rng.Float64() < seatOccupancyRate,
		}
	}
	return seats
}

// RandomPassIssuer issues passes with a random gate from A1..A15 and a
// boarding time within the 08:00-09:59 window. The QR token is the passenger
// ID concatenated with the issue timestamp.
type RandomPassIssuer struct {
	rng *rand.Rand
}

func NewRandomPassIssuer() *RandomPassIssuer {
	return &RandomPassIssuer{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (p *RandomPassIssuer) Issue(passengerID int) models.BoardingPass {
	hour := 8 + p.rng.Intn(2)
	minute := p.rng.Intn(60)
	return models.BoardingPass{
		ID:           passengerID,
		Gate:         fmt.Sprintf("A%d", p.rng.Intn(gateCount)+1),
		BoardingTime: fmt.Sprintf("%02d:%02d", hour, minute),
		QRCode:       fmt.Sprintf("BP%d%d", passengerID, time.Now().UnixMilli()),
	}
}
