package constants

// Roles
const (
	ROLE_ADMIN    = "ADMIN"
	ROLE_OPERATOR = "OPERATOR"
)

// Pesan umum
const (
	ERROR_INTERNAL_ERROR       = "Terjadi kesalahan pada server"
	ERROR_INPUT                = "Data input tidak valid"
	ERROR_UPDATE               = "Gagal menyimpan perubahan"
	ERROR_PARSE_DATA_TO_LOCALS = "Gagal membaca data dari context"
	DATA_INPUT_IS_NOT_NUMBER   = "Parameter harus berupa angka"
	CAN_NOT_HASH_PASSWORD      = "Gagal memproses password"

	MISSING_LOGIN_INPUT = "Username dan password wajib diisi"
	INVALID_USERNAME    = "Username tidak ditemukan"
	INVALID_PASSWORD    = "Password salah"
	ACCOUNT_NOT_ACTIVE  = "Akun tidak aktif"
	NOT_ADMIN           = "Hanya admin yang diizinkan"
)

// Pesan absensi & event
const (
	EVENT_NOT_FOUND       = "Event tidak ditemukan"
	EVENT_NOT_ACTIVE      = "Event tidak aktif"
	PARTICIPANT_NOT_FOUND = "Peserta tidak ditemukan"
	NO_ACTIVE_EVENT       = "Tidak ada event aktif untuk peserta ini"
	AMBIGUOUS_CODE        = "Kode peserta ditemukan di beberapa event aktif. Gunakan QR dengan format eventId:participantCode."
	SEAT_NOT_FOUND        = "Kursi tidak ditemukan"
	DUPLICATE_CODE        = "Kode peserta sudah dipakai di event ini"
)
