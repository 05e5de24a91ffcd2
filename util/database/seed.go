package database

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// SeedStats reports how many sample rows Seed inserted per table.
type SeedStats struct {
	Mobil      int
	Pelanggan  int
	Peminjaman int
}

var (
	carModels = map[string][]string{
		"Toyota":     {"Avanza", "Innova", "Camry", "Corolla", "Rush"},
		"Honda":      {"Civic", "CR-V", "HR-V", "Brio", "Jazz"},
		"Suzuki":     {"Ertiga", "XL7", "Baleno", "Swift", "Ignis"},
		"Mitsubishi": {"Xpander", "Pajero", "Eclipse Cross", "Outlander"},
		"Daihatsu":   {"Xenia", "Terios", "Ayla", "Sigra", "Rocky"},
	}
	brands      = []string{"Toyota", "Honda", "Suzuki", "Mitsubishi", "Daihatsu"}
	colors      = []string{"Hitam", "Putih", "Silver", "Merah", "Biru", "Abu-abu"}
	regions     = []string{"B", "D", "F", "AB", "AD", "Z"}
	plateLetter = "ABCDEFGHJKLMNPRSTUVWXYZ"

	firstNames = []string{"Ahmad", "Budi", "Dewi", "Eko", "Fitri", "Gunawan", "Hadi", "Indah",
		"Joko", "Kartika", "Lina", "Muhammad", "Nina", "Oscar", "Putri", "Rudi",
		"Siti", "Tono", "Udin", "Wati"}
	lastNames = []string{"Kusuma", "Wijaya", "Suharto", "Setiawan", "Hidayat", "Nugroho",
		"Suryadi", "Hartono", "Santoso", "Wibowo", "Pradana", "Utama"}
	cities  = []string{"Jakarta", "Bandung", "Surabaya", "Malang", "Bogor"}
	streets = []string{"Jl. Sudirman", "Jl. Thamrin", "Jl. Merdeka", "Jl. Diponegoro", "Jl. A. Yani"}
)

const (
	seedCars      = 60
	seedCustomers = 60
	seedRentals   = 50
	dateLayout    = "2006-01-02"
)

// Seed fills empty tables with sample data. Tables that already hold rows are
// left alone, so calling it on every start is safe.
func Seed(ctx context.Context, db *sql.DB, rnd *rand.Rand, now time.Time) (st SeedStats, err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return st, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if st.Mobil, err = seedMobil(ctx, tx, rnd, now); err != nil {
		return st, fmt.Errorf("seed Mobil: %w", err)
	}
	if st.Pelanggan, err = seedPelanggan(ctx, tx, rnd); err != nil {
		return st, fmt.Errorf("seed Pelanggan: %w", err)
	}
	if st.Peminjaman, err = seedPeminjaman(ctx, tx, rnd, now); err != nil {
		return st, fmt.Errorf("seed Peminjaman: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return st, err
	}
	return st, nil
}

func isEmpty(ctx context.Context, tx *sql.Tx, table string) (bool, error) {
	var n int64
	// table names come from the constants in this file only
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return false, err
	}
	return n == 0, nil
}

func seedMobil(ctx context.Context, tx *sql.Tx, rnd *rand.Rand, now time.Time) (int, error) {
	empty, err := isEmpty(ctx, tx, "Mobil")
	if err != nil || !empty {
		return 0, err
	}
	const q = `
		INSERT INTO Mobil (NomorPlat, Model, Warna, Tahun, StatusKetersediaan)
		VALUES (?, ?, ?, ?, 1)`
	used := make(map[string]bool, seedCars)
	for i := 0; i < seedCars; i++ {
		plate := samplePlate(rnd)
		for used[plate] {
			plate = samplePlate(rnd)
		}
		used[plate] = true

		brand := brands[rnd.Intn(len(brands))]
		models := carModels[brand]
		model := brand + " " + models[rnd.Intn(len(models))]
		year := now.Year() - rnd.Intn(6)
		if _, err := tx.ExecContext(ctx, q, plate, model, colors[rnd.Intn(len(colors))], year); err != nil {
			return i, err
		}
	}
	return seedCars, nil
}

func samplePlate(rnd *rand.Rand) string {
	var b strings.Builder
	b.WriteString(regions[rnd.Intn(len(regions))])
	fmt.Fprintf(&b, " %d ", 1000+rnd.Intn(9000))
	for i := 0; i < 3; i++ {
		b.WriteByte(plateLetter[rnd.Intn(len(plateLetter))])
	}
	return b.String()
}

func seedPelanggan(ctx context.Context, tx *sql.Tx, rnd *rand.Rand) (int, error) {
	empty, err := isEmpty(ctx, tx, "Pelanggan")
	if err != nil || !empty {
		return 0, err
	}
	const q = `
		INSERT INTO Pelanggan (NIK, Nama, Kontak, Alamat, CreditPoint, StatusPinjam)
		VALUES (?, ?, ?, ?, ?, 0)`
	used := make(map[string]bool, seedCustomers)
	for i := 0; i < seedCustomers; i++ {
		nik := sampleNIK(rnd)
		for used[nik] {
			nik = sampleNIK(rnd)
		}
		used[nik] = true

		name := firstNames[rnd.Intn(len(firstNames))] + " " + lastNames[rnd.Intn(len(lastNames))]
		phone := fmt.Sprintf("08%d", 100000000+rnd.Intn(900000000))
		addr := fmt.Sprintf("%s No. %d, %s", streets[rnd.Intn(len(streets))], 1+rnd.Intn(99), cities[rnd.Intn(len(cities))])
		if _, err := tx.ExecContext(ctx, q, nik, name, phone, addr, rnd.Intn(101)); err != nil {
			return i, err
		}
	}
	return seedCustomers, nil
}

func sampleNIK(rnd *rand.Rand) string {
	b := make([]byte, 16)
	for i := range b {
		b[i] = byte('0' + rnd.Intn(10))
	}
	return string(b)
}

func seedPeminjaman(ctx context.Context, tx *sql.Tx, rnd *rand.Rand, now time.Time) (int, error) {
	empty, err := isEmpty(ctx, tx, "Peminjaman")
	if err != nil || !empty {
		return 0, err
	}

	plates, err := column(ctx, tx, `SELECT NomorPlat FROM Mobil WHERE StatusKetersediaan = 1 ORDER BY rowid`)
	if err != nil {
		return 0, err
	}
	niks, err := column(ctx, tx, `SELECT NIK FROM Pelanggan WHERE StatusPinjam = 0 ORDER BY rowid`)
	if err != nil {
		return 0, err
	}
	if len(plates) == 0 || len(niks) == 0 {
		return 0, nil
	}

	const ins = `
		INSERT INTO Peminjaman (
			NomorPlat, NIK, TanggalPeminjaman, TanggalPengembalian, TanggalPembayaran,
			TenggatPengembalian, TenggatPembayaran, BesarPembayaran,
			StatusPengembalian, StatusPembayaran
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	// an open rental holds its car and customer, so each can back at most one
	busyPlate := map[string]bool{}
	busyNIK := map[string]bool{}
	n := 0
	for i := 0; i < seedRentals; i++ {
		borrowed := now.AddDate(0, 0, -rnd.Intn(61))
		dueReturn := borrowed.AddDate(0, 0, 3+rnd.Intn(12))
		duePay := dueReturn.AddDate(0, 0, 1)

		plate := plates[rnd.Intn(len(plates))]
		nik := niks[rnd.Intn(len(niks))]
		returned := rnd.Intn(2) == 1 || busyPlate[plate] || busyNIK[nik]
		paid := returned && rnd.Intn(2) == 1

		var retDate, payDate sql.NullString
		if returned {
			rd := dueReturn.AddDate(0, 0, rnd.Intn(5)-2)
			if rd.Before(borrowed) {
				rd = borrowed
			}
			retDate = sql.NullString{String: rd.Format(dateLayout), Valid: true}
			if paid {
				payDate = sql.NullString{String: rd.AddDate(0, 0, rnd.Intn(4)).Format(dateLayout), Valid: true}
			}
		}

		if _, err := tx.ExecContext(ctx, ins,
			plate, nik, borrowed.Format(dateLayout), retDate, payDate,
			dueReturn.Format(dateLayout), duePay.Format(dateLayout),
			500000+rnd.Intn(1500001), boolInt(returned), boolInt(paid),
		); err != nil {
			return n, err
		}
		n++

		if !returned {
			busyPlate[plate] = true
			busyNIK[nik] = true
			if _, err := tx.ExecContext(ctx, `UPDATE Mobil SET StatusKetersediaan = 0 WHERE NomorPlat = ?`, plate); err != nil {
				return n, err
			}
			if _, err := tx.ExecContext(ctx, `UPDATE Pelanggan SET StatusPinjam = 1 WHERE NIK = ?`, nik); err != nil {
				return n, err
			}
		}
	}
	return n, nil
}

func column(ctx context.Context, tx *sql.Tx, q string) ([]string, error) {
	rows, err := tx.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
