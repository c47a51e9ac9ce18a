package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"shiftboard/internal/calendar"
	"shiftboard/internal/model"
)

// ── ICS 解析器 ──────────────────────────────────────────────
//
// 职责：将标准 iCalendar (RFC 5545) 节假日日历解析为 Holiday 列表。
//
//   - SUMMARY 为节假日名称，缺失则跳过
//   - 全天事件 DTEND 为开区间；跨多天的事件按天展开为多条记录
//   - CATEGORIES 的第一个值 → type，DESCRIPTION → description
//   - 同一文件内 (日期, 名称) 重复的事件只保留一条
// ─────────────────────────────────────────────────────────────

// maxHolidaySpanDays 单个事件最多展开的天数
const maxHolidaySpanDays = 31

// FetchICSContent 从 URL 获取 ICS 内容，响应体超过 maxBytes 的部分被截断
func FetchICSContent(ctx context.Context, rawURL string, timeout time.Duration, maxBytes int64) (io.ReadCloser, error) {
	// webcal:// → https://
	u := rawURL
	if strings.HasPrefix(u, "webcal://") {
		u = "https://" + strings.TrimPrefix(u, "webcal://")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("构建 ICS 请求失败: %w", err)
	}
	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("获取 ICS 失败: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("获取 ICS 失败: HTTP %d", resp.StatusCode)
	}
	return struct {
		io.Reader
		io.Closer
	}{
		Reader: io.LimitReader(resp.Body, maxBytes),
		Closer: resp.Body,
	}, nil
}

// ParseHolidayICS 解析 ICS 内容，返回节假日列表与被跳过的事件数
func ParseHolidayICS(reader io.Reader, orgID string, loc *time.Location) ([]model.Holiday, int, error) {
	cal, err := ics.ParseCalendar(reader)
	if err != nil {
		return nil, 0, fmt.Errorf("ICS 格式解析失败: %w", err)
	}

	var (
		result  []model.Holiday
		skipped int
		seen    = make(map[string]bool)
	)
	for _, evt := range cal.Events() {
		days, ok := parseHolidayEvent(evt, orgID, loc)
		if !ok {
			skipped++
			continue
		}
		for _, h := range days {
			key := calendar.DayKey(h.Date) + "|" + h.Name
			if seen[key] {
				continue
			}
			seen[key] = true
			result = append(result, h)
		}
	}
	return result, skipped, nil
}

// parseHolidayEvent 将单个 VEVENT 展开为按天的节假日
func parseHolidayEvent(evt *ics.VEvent, orgID string, loc *time.Location) ([]model.Holiday, bool) {
	name := propertyValue(evt, ics.ComponentPropertySummary)
	if name == "" {
		return nil, false
	}

	start, allDay, err := parseICSDate(evt, ics.ComponentPropertyDtStart, loc)
	if err != nil {
		return nil, false
	}
	last := start
	if end, endAllDay, err := parseICSDate(evt, ics.ComponentPropertyDtEnd, loc); err == nil && end.After(start) {
		if endAllDay || allDay {
			// 全天事件 DTEND 不含当天
			last = end.AddDate(0, 0, -1)
		} else {
			last = end.Add(-time.Nanosecond)
		}
	}

	var typ, desc *string
	if v := propertyValue(evt, ics.ComponentPropertyCategories); v != "" {
		first := strings.TrimSpace(strings.Split(v, ",")[0])
		typ = &first
	}
	if v := propertyValue(evt, ics.ComponentPropertyDescription); v != "" {
		desc = &v
	}

	var days []model.Holiday
	day := calendar.Midday(start)
	for i := 0; i < maxHolidaySpanDays && !day.After(calendar.Midday(last)); i++ {
		days = append(days, model.Holiday{
			OrganizationID: orgID,
			Date:           storageDay(day),
			Name:           name,
			Type:           typ,
			Description:    desc,
		})
		day = day.AddDate(0, 0, 1)
	}
	return days, len(days) > 0
}

func propertyValue(evt *ics.VEvent, name ics.ComponentProperty) string {
	prop := evt.GetProperty(name)
	if prop == nil {
		return ""
	}
	return strings.TrimSpace(prop.Value)
}

// parseICSDate 从 VEVENT 中解析日期属性，allDay 表示纯日期（VALUE=DATE）格式
func parseICSDate(evt *ics.VEvent, propName ics.ComponentProperty, loc *time.Location) (t time.Time, allDay bool, err error) {
	prop := evt.GetProperty(propName)
	if prop == nil {
		return time.Time{}, false, fmt.Errorf("missing property %s", propName)
	}
	val := strings.TrimSpace(prop.Value)

	// 检查 TZID 参数
	tzLoc := loc
	for k, v := range prop.ICalParameters {
		if strings.ToUpper(k) == "TZID" && len(v) > 0 {
			if l, err := time.LoadLocation(v[0]); err == nil {
				tzLoc = l
			}
		}
	}

	if d, err := time.ParseInLocation("20060102", val, loc); err == nil {
		return d, true, nil
	}
	if d, err := time.Parse("20060102T150405Z", val); err == nil {
		return d.In(loc), false, nil
	}
	if d, err := time.ParseInLocation("20060102T150405", val, tzLoc); err == nil {
		return d.In(loc), false, nil
	}
	return time.Time{}, false, fmt.Errorf("无法解析日期: %s", val)
}
