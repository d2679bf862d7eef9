// Package docs renders printable boarding pass documents.
package docs

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"github.com/cx-tal-miterani/group-checkin/internal/models"
)

// RenderBoardingPass builds a one-page A4 PDF for a single passenger.
func RenderBoardingPass(group *models.Group, passenger *models.Passenger, pass *models.BoardingPass) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Boarding Pass", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOARDING PASS")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Passenger : %s", passengerName(passenger)),
		fmt.Sprintf("Flight    : %s", group.FlightNumber),
		fmt.Sprintf("Route     : %s -> %s", group.DepartureCity, group.ArrivalCity),
		fmt.Sprintf("Date      : %s %s", group.DepartureDate, group.DepartureTime),
		fmt.Sprintf("Seat      : %s", orDash(passenger.SeatNumber)),
		fmt.Sprintf("Gate      : %s", orDash(pass.Gate)),
		fmt.Sprintf("Boarding  : %s", orDash(pass.BoardingTime)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Courier", "", 11)
	pdf.Cell(0, 7, pass.QRCode)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please arrive at the gate before boarding closes. This pass is valid for one passenger.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render boarding pass: %w", err)
	}
	return buf.Bytes(), nil
}

func passengerName(p *models.Passenger) string {
	parts := []string{p.LastName, p.FirstName}
	if p.MiddleName != "" {
		parts = append(parts, p.MiddleName)
	}
	return strings.Join(parts, " ")
}

func orDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
