// internal/handlers/state.go
package handlers

import (
	"fmt"
	"strings"
	"time"

	"influencer-dashboard/internal/analytics"
	"influencer-dashboard/internal/dataset"

	"github.com/gin-gonic/gin"
)

// snap — снимок таблиц текущей сессии. Устанавливается один раз при старте
// и дальше только читается, поэтому обходится без блокировок.
var snap *dataset.Snapshot

// SetSnapshot передает обработчикам загруженный снимок данных.
func SetSnapshot(s *dataset.Snapshot) {
	snap = s
}

// Snapshot возвращает снимок текущей сессии.
func Snapshot() *dataset.Snapshot {
	return snap
}

// parseSelection собирает выборку из query-параметров запроса:
// categories=all|a,b  platforms=all|x,y  from=YYYY-MM-DD  to=YYYY-MM-DD.
// Отсутствующий параметр означает "без ограничений": all по нишам и
// площадкам и полный диапазон дат снимка. Явно пустой список
// (categories=) означает "ничего не выбрано".
func parseSelection(c *gin.Context) (analytics.Selection, error) {
	minDate, maxDate := snap.DateBounds()
	sel := analytics.Selection{
		Categories: splitParam(c.DefaultQuery("categories", analytics.All)),
		Platforms:  splitParam(c.DefaultQuery("platforms", analytics.All)),
		From:       minDate,
		To:         maxDate,
	}

	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return analytics.Selection{}, fmt.Errorf("bad 'from' date %q", raw)
		}
		sel.From = t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return analytics.Selection{}, fmt.Errorf("bad 'to' date %q", raw)
		}
		sel.To = t
	}
	return sel, nil
}

func splitParam(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			values = append(values, v)
		}
	}
	return values
}
