package helper

import "errors"

// Error absensi, dipetakan ke status HTTP di handler.
var (
	ErrEventNotFound       = errors.New("event tidak ditemukan")
	ErrEventNotActive      = errors.New("event tidak aktif")
	ErrParticipantNotFound = errors.New("peserta tidak ditemukan")
	ErrNoActiveEvent       = errors.New("tidak ada event aktif untuk peserta ini")
	ErrAmbiguousCode       = errors.New("kode peserta ada di lebih dari satu event aktif")
)

// ScanCandidate kandidat hasil pencarian kode peserta lintas event.
type ScanCandidate struct {
	ParticipantId uint
	EventId       uint
	FullName      string
}

// ResolveScanCandidates memilih tepat satu peserta dari semua kandidat
// yang kodenya sama. Kandidat disaring dulu ke event aktif:
// 0 kandidat awal -> ErrParticipantNotFound, 0 aktif -> ErrNoActiveEvent,
// >1 aktif -> ErrAmbiguousCode (kode hanya unik di dalam satu event).
func ResolveScanCandidates(candidates []ScanCandidate, activeEvents map[uint]bool) (ScanCandidate, error) {
	if len(candidates) == 0 {
		return ScanCandidate{}, ErrParticipantNotFound
	}

	var active []ScanCandidate
	for _, cand := range candidates {
		if activeEvents[cand.EventId] {
			active = append(active, cand)
		}
	}

	if len(active) == 0 {
		return ScanCandidate{}, ErrNoActiveEvent
	}
	if len(active) > 1 {
		return ScanCandidate{}, ErrAmbiguousCode
	}
	return active[0], nil
}
