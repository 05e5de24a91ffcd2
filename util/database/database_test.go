package database_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zirachw/CarGoOwner/util/database"
	"github.com/zirachw/CarGoOwner/util/database/dbtest"
)

func TestEnsureSchema_Idempotent(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)

	dbtest.Exec(t, db, `INSERT INTO Mobil (NomorPlat, Model, Warna, Tahun) VALUES ('B 1 A', 'Avanza', 'Putih', 2021)`)
	before := dbtest.Count(t, db, "Mobil")

	require.NoError(t, database.EnsureSchema(ctx, db))
	require.NoError(t, database.EnsureSchema(ctx, db))
	require.Equal(t, before, dbtest.Count(t, db, "Mobil"))
}

func TestForeignKeysEnforced(t *testing.T) {
	db := dbtest.New(t)

	_, err := db.Exec(`
		INSERT INTO Peminjaman (NomorPlat, NIK, TanggalPeminjaman, TenggatPengembalian, TenggatPembayaran, BesarPembayaran)
		VALUES ('X 1 Y', '0000000000000000', '2024-12-01', '2024-12-07', '2024-12-08', 1)`)
	require.Error(t, err)
}

func TestSeed_FillsEmptyTablesOnce(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	now := time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC)

	st, err := database.Seed(ctx, db, rand.New(rand.NewSource(1)), now)
	require.NoError(t, err)
	require.Equal(t, 60, st.Mobil)
	require.Equal(t, 60, st.Pelanggan)
	require.Equal(t, 50, st.Peminjaman)

	again, err := database.Seed(ctx, db, rand.New(rand.NewSource(2)), now)
	require.NoError(t, err)
	require.Equal(t, database.SeedStats{}, again)
	require.Equal(t, 50, dbtest.Count(t, db, "Peminjaman"))
}

func TestSeed_OpenRentalsHoldCarAndCustomer(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)

	_, err := database.Seed(ctx, db, rand.New(rand.NewSource(7)), time.Now())
	require.NoError(t, err)

	var open, busyCars, busyCustomers int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM Peminjaman WHERE StatusPengembalian = 0`).Scan(&open))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM Mobil WHERE StatusKetersediaan = 0`).Scan(&busyCars))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM Pelanggan WHERE StatusPinjam = 1`).Scan(&busyCustomers))
	require.Equal(t, open, busyCars)
	require.Equal(t, open, busyCustomers)

	var unpaidReturnedWithDate int
	require.NoError(t, db.QueryRow(`
		SELECT COUNT(*) FROM Peminjaman
		WHERE StatusPembayaran = 0 AND TanggalPembayaran IS NOT NULL`).Scan(&unpaidReturnedWithDate))
	require.Zero(t, unpaidReturnedWithDate)
}
