package database

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS Mobil (
		NomorPlat          TEXT PRIMARY KEY,
		Gambar             BLOB,
		Model              TEXT NOT NULL,
		Warna              TEXT NOT NULL,
		Tahun              INTEGER NOT NULL,
		StatusKetersediaan INTEGER NOT NULL DEFAULT 1 CHECK (StatusKetersediaan IN (0, 1))
	)`,
	`CREATE TABLE IF NOT EXISTS Pelanggan (
		NIK          TEXT PRIMARY KEY CHECK (length(NIK) = 16),
		Nama         TEXT NOT NULL,
		Kontak       TEXT NOT NULL,
		Alamat       TEXT NOT NULL,
		CreditPoint  INTEGER NOT NULL DEFAULT 100,
		StatusPinjam INTEGER NOT NULL DEFAULT 0 CHECK (StatusPinjam IN (0, 1))
	)`,
	`CREATE TABLE IF NOT EXISTS Peminjaman (
		ID                  INTEGER PRIMARY KEY AUTOINCREMENT,
		NomorPlat           TEXT NOT NULL REFERENCES Mobil(NomorPlat) ON UPDATE CASCADE,
		NIK                 TEXT NOT NULL REFERENCES Pelanggan(NIK) ON UPDATE CASCADE,
		TanggalPeminjaman   TEXT NOT NULL,
		TanggalPengembalian TEXT,
		TanggalPembayaran   TEXT,
		TenggatPengembalian TEXT NOT NULL,
		TenggatPembayaran   TEXT NOT NULL,
		BesarPembayaran     INTEGER NOT NULL CHECK (BesarPembayaran >= 0),
		StatusPengembalian  INTEGER NOT NULL DEFAULT 0 CHECK (StatusPengembalian IN (0, 1)),
		StatusPembayaran    INTEGER NOT NULL DEFAULT 0 CHECK (StatusPembayaran IN (0, 1))
	)`,
	`CREATE INDEX IF NOT EXISTS idx_peminjaman_nik ON Peminjaman(NIK)`,
	`CREATE INDEX IF NOT EXISTS idx_peminjaman_plat ON Peminjaman(NomorPlat)`,
	`CREATE INDEX IF NOT EXISTS idx_mobil_warna_tahun ON Mobil(Warna, Tahun)`,
}

// EnsureSchema creates the tables and indexes that do not exist yet.
// Running it again is a no-op.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
