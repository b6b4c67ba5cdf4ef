// internal/dataset/loader.go
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"influencer-dashboard/models"

	"github.com/shopspring/decimal"
)

// Имена CSV-файлов с исходными таблицами внутри каталога данных.
const (
	influencersFile = "influencers.csv"
	postsFile       = "posts.csv"
	trackingFile    = "tracking_data.csv"
	payoutsFile     = "payouts.csv"
)

// LoadCSV загружает четыре таблицы из каталога с CSV-файлами и собирает
// из них неизменяемый снимок сессии. Битые строки (отсутствующее
// обязательное поле, отрицательное число, нечитаемая дата) пропускаются
// и учитываются в счетчиках, вся загрузка из-за них не падает.
func LoadCSV(dir string) (*Snapshot, error) {
	var skipped SkipCounts

	influencers, n, err := loadTable(filepath.Join(dir, influencersFile), parseInfluencer)
	if err != nil {
		return nil, err
	}
	skipped.Influencers += n

	posts, n, err := loadTable(filepath.Join(dir, postsFile), parsePost)
	if err != nil {
		return nil, err
	}
	skipped.Posts += n

	tracking, n, err := loadTable(filepath.Join(dir, trackingFile), parseTracking)
	if err != nil {
		return nil, err
	}
	skipped.Tracking += n

	payouts, n, err := loadTable(filepath.Join(dir, payoutsFile), parsePayout)
	if err != nil {
		return nil, err
	}
	skipped.Payouts += n

	return New(influencers, posts, tracking, payouts, skipped), nil
}

// row — одна строка CSV с доступом к полям по имени колонки.
type row map[string]string

func (r row) get(name string) string {
	return strings.TrimSpace(r[name])
}

// loadTable читает CSV-файл и применяет parse к каждой строке.
// Возвращает разобранные записи и число пропущенных строк.
func loadTable[T any](path string, parse func(row) (T, error)) ([]T, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	records, skipped, err := readTable(f, parse)
	if err != nil {
		return nil, 0, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if skipped > 0 {
		slog.Warn("Часть строк не прошла валидацию и была пропущена", "file", filepath.Base(path), "skipped", skipped)
	}
	return records, skipped, nil
}

func readTable[T any](r io.Reader, parse func(row) (T, error)) ([]T, int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, 0, nil
		}
		return nil, 0, err
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}

	var (
		records []T
		skipped int
	)
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Строка с неверным числом полей — считаем ее битой и идем дальше.
			skipped++
			continue
		}
		fields := make(row, len(header))
		for i, name := range header {
			if i < len(rec) {
				fields[name] = rec[i]
			}
		}
		parsed, err := parse(fields)
		if err != nil {
			skipped++
			continue
		}
		records = append(records, parsed)
	}
	return records, skipped, nil
}

func parseInfluencer(r row) (models.Influencer, error) {
	id, err := parseID(r.get("id"))
	if err != nil {
		return models.Influencer{}, err
	}
	name := r.get("name")
	if name == "" {
		return models.Influencer{}, fmt.Errorf("missing name")
	}
	followers, err := parseNonNegativeInt(r.get("follower_count"))
	if err != nil {
		return models.Influencer{}, err
	}
	return models.Influencer{
		ID:            id,
		Name:          name,
		Category:      r.get("category"),
		Platform:      r.get("platform"),
		FollowerCount: followers,
	}, nil
}

func parsePost(r row) (models.Post, error) {
	id, err := parseID(r.get("influencer_id"))
	if err != nil {
		return models.Post{}, err
	}
	date, err := parseDate(r.get("date"))
	if err != nil {
		return models.Post{}, err
	}
	reach, err := parseNonNegativeInt(r.get("reach"))
	if err != nil {
		return models.Post{}, err
	}
	likes, err := parseNonNegativeInt(r.get("likes"))
	if err != nil {
		return models.Post{}, err
	}
	comments, err := parseNonNegativeInt(r.get("comments"))
	if err != nil {
		return models.Post{}, err
	}
	return models.Post{
		InfluencerID: id,
		Date:         date,
		Platform:     r.get("platform"),
		Reach:        reach,
		Likes:        likes,
		Comments:     comments,
	}, nil
}

func parseTracking(r row) (models.Tracking, error) {
	orderID := r.get("order_id")
	if orderID == "" {
		return models.Tracking{}, fmt.Errorf("missing order_id")
	}
	date, err := parseDate(r.get("date"))
	if err != nil {
		return models.Tracking{}, err
	}
	revenue, err := parseMoney(r.get("revenue"))
	if err != nil {
		return models.Tracking{}, err
	}

	// Пустой influencer_id (или явный source=organic) помечает органическую
	// выручку — заказ без источника-инфлюенсера.
	var influencerID *int64
	rawID := r.get("influencer_id")
	if rawID != "" && !strings.EqualFold(r.get("source"), "organic") {
		id, err := parseID(rawID)
		if err != nil {
			return models.Tracking{}, err
		}
		influencerID = &id
	}

	return models.Tracking{
		OrderID:      orderID,
		InfluencerID: influencerID,
		Date:         date,
		Revenue:      revenue,
	}, nil
}

func parsePayout(r row) (models.Payout, error) {
	id, err := parseID(r.get("influencer_id"))
	if err != nil {
		return models.Payout{}, err
	}
	basis := normalizeBasis(r.get("basis"))
	if !models.ValidBasis(basis) {
		return models.Payout{}, fmt.Errorf("unknown payout basis %q", r.get("basis"))
	}
	rate, err := parseMoney(r.get("rate"))
	if err != nil {
		return models.Payout{}, err
	}
	total := decimal.Zero
	if raw := r.get("total_payout"); raw != "" {
		total, err = parseMoney(raw)
		if err != nil {
			return models.Payout{}, err
		}
	}
	return models.Payout{
		InfluencerID: id,
		Basis:        basis,
		Rate:         rate,
		TotalPayout:  total,
	}, nil
}

// normalizeBasis приводит значение колонки basis к каноническому виду:
// в выгрузках встречаются и "post"/"order", и "per_post"/"per_order".
func normalizeBasis(raw string) string {
	switch strings.ToLower(raw) {
	case "post", "per_post":
		return models.PayoutBasisPerPost
	case "order", "per_order":
		return models.PayoutBasisPerOrder
	default:
		return strings.ToLower(raw)
	}
}

func parseID(raw string) (int64, error) {
	if raw == "" {
		return 0, fmt.Errorf("missing id")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad id %q: %w", raw, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("non-positive id %d", id)
	}
	return id, nil
}

func parseNonNegativeInt(raw string) (int64, error) {
	if raw == "" {
		return 0, fmt.Errorf("missing numeric field")
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad number %q: %w", raw, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative value %d", n)
	}
	return n, nil
}

func parseMoney(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, fmt.Errorf("missing money field")
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
	if err != nil {
		return decimal.Zero, fmt.Errorf("bad money value %q: %w", raw, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative money value %s", d)
	}
	return d, nil
}

// Форматы дат, встречающиеся в выгрузках.
var dateFormats = []string{"2006-01-02", "02.01.2006", "2006-01-02 15:04:05"}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("missing date")
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", raw)
}
