// internal/analytics/filter.go
package analytics

import (
	"strings"
	"time"

	"influencer-dashboard/internal/dataset"
	"influencer-dashboard/models"
)

// All — сентинел "все значения" для фильтров по нише и площадке.
const All = "all"

// Selection описывает выбранные пользователем фильтры дашборда.
// Пустой список означает "ничего не выбрано" (ни одна строка не проходит),
// список с сентинелом All пропускает предикат целиком.
type Selection struct {
	Categories []string  `json:"categories"`
	Platforms  []string  `json:"platforms"`
	From       time.Time `json:"from"`
	To         time.Time `json:"to"`
}

// SelectAll возвращает выборку без ограничений по нишам и площадкам
// с заданным диапазоном дат.
func SelectAll(from, to time.Time) Selection {
	return Selection{
		Categories: []string{All},
		Platforms:  []string{All},
		From:       from,
		To:         to,
	}
}

// Fingerprint возвращает каноническое строковое представление выборки.
// Используется как ключ кэша: одинаковые выборки дают одинаковую строку.
func (sel Selection) Fingerprint() string {
	var b strings.Builder
	b.WriteString("cat=")
	b.WriteString(strings.Join(sel.Categories, ","))
	b.WriteString(";plat=")
	b.WriteString(strings.Join(sel.Platforms, ","))
	b.WriteString(";from=")
	b.WriteString(sel.From.Format("2006-01-02"))
	b.WriteString(";to=")
	b.WriteString(sel.To.Format("2006-01-02"))
	return b.String()
}

// Matches проверяет, проходит ли значение предикат множественного выбора:
// сентинел All пропускает любое значение, пустой список — никакое.
func Matches(selected []string, value string) bool {
	for _, s := range selected {
		if strings.EqualFold(s, All) || s == value {
			return true
		}
	}
	return false
}

// inRange проверяет попадание даты в диапазон [from, to] включительно.
func (sel Selection) inRange(date time.Time) bool {
	return !date.Before(sel.From) && !date.After(sel.To)
}

// FilterTracking возвращает подмножество трекинговых записей, чьи
// инфлюенсеры подходят под выбранные нишу и площадку, а дата попадает
// в диапазон включительно. Органические записи (без инфлюенсера) в выборку
// не попадают: у них нет ниши и площадки. Порядок исходных строк
// сохраняется, функция чистая.
func FilterTracking(snap *dataset.Snapshot, sel Selection) []models.Tracking {
	filtered := make([]models.Tracking, 0)
	if sel.From.After(sel.To) {
		return filtered
	}
	for _, t := range snap.Tracking {
		if t.InfluencerID == nil {
			continue
		}
		inf, ok := snap.Influencer(*t.InfluencerID)
		if !ok {
			continue
		}
		if !Matches(sel.Categories, inf.Category) || !Matches(sel.Platforms, inf.Platform) {
			continue
		}
		if !sel.inRange(t.Date) {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}
