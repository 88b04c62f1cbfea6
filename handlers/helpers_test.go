// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"strconv"
	"time"
)

func itoa(n int) string {
	return strconv.Itoa(n)
}

func intPtr(n int) *int {
	return &n
}

func testTime() time.Time {
	return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}
