package utils

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

// ParticipantCSVRow hasil parse satu baris file import peserta
type ParticipantCSVRow struct {
	FullName        string
	ParticipantCode string
	Email           string
	Phone           string
	Gender          string
}

var participantCSVHeader = []string{"full_name", "participant_code", "email", "phone", "gender"}

// ParseParticipantCSV membaca file import. Header wajib: full_name;
// kolom lain opsional, urutan mengikuti header file.
func ParseParticipantCSV(r io.Reader) ([]ParticipantCSVRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.New("file CSV kosong atau tidak valid")
	}

	col := make(map[string]int)
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := col["full_name"]; !ok {
		return nil, errors.New("kolom full_name wajib ada di header CSV")
	}

	get := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []ParticipantCSVRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := ParticipantCSVRow{
			FullName:        get(record, "full_name"),
			ParticipantCode: get(record, "participant_code"),
			Email:           get(record, "email"),
			Phone:           get(record, "phone"),
			Gender:          get(record, "gender"),
		}
		if row.FullName == "" {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ExportParticipantRow satu baris file export peserta
type ExportParticipantRow struct {
	FullName        string
	ParticipantCode string
	Email           string
	Phone           string
	Gender          string
	TableNumber     string
	SeatNumber      string
	TotalScans      string
}

// WriteParticipantCSV menulis file export peserta ke buffer
func WriteParticipantCSV(rows []ExportParticipantRow) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := append(append([]string{}, participantCSVHeader...), "table_number", "seat_number", "total_scans")
	if err := writer.Write(header); err != nil {
		return nil, err
	}
	for _, r := range rows {
		record := []string{r.FullName, r.ParticipantCode, r.Email, r.Phone, r.Gender, r.TableNumber, r.SeatNumber, r.TotalScans}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
