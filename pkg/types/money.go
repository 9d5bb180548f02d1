package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Money денежная сумма в минорных единицах валюты (пайсы для INR).
// Хранится как int64, чтобы избежать ошибок округления float64 при расчете цены.
// В БД сериализуется как NUMERIC(10,2) в мажорных единицах ("500.00").
type Money int64

// ErrInvalidMoney возвращается при некорректном формате денежной суммы
var ErrInvalidMoney = errors.New("types: invalid money format")

// ParseMoney парсит строку вида "500.00" или "500" в Money
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidMoney
	}

	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}

	intPart := s
	fracPart := "00"
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart = s[:idx]
		fracPart = s[idx+1:]
		if len(fracPart) > 2 {
			return 0, fmt.Errorf("%w: too many decimal places in %q", ErrInvalidMoney, s)
		}
		for len(fracPart) < 2 {
			fracPart += "0"
		}
	}
	if intPart == "" {
		intPart = "0"
	}

	major, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMoney, s)
	}
	minor, err := strconv.ParseInt(fracPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMoney, s)
	}

	result := major*100 + minor
	if negative {
		result = -result
	}

	return Money(result), nil
}

// MoneyFromMinor создает Money из количества минорных единиц
func MoneyFromMinor(minor int64) Money {
	return Money(minor)
}

// Minor возвращает сумму в минорных единицах (пайсы)
func (m Money) Minor() int64 {
	return int64(m)
}

// String возвращает сумму в мажорных единицах с двумя знаками: "750.00"
func (m Money) String() string {
	v := int64(m)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// IsPositive возвращает true, если сумма строго больше нуля
func (m Money) IsPositive() bool {
	return m > 0
}

// PerMinutes считает стоимость интервала по почасовой ставке m.
// Точно для длительностей, кратных 30 минутам (minutes/60 дает целые полшага).
func (m Money) PerMinutes(minutes int) Money {
	return Money(int64(m) * int64(minutes) / 60)
}

// Value реализует driver.Valuer для записи в NUMERIC колонку
func (m Money) Value() (driver.Value, error) {
	return m.String(), nil
}

// Scan реализует sql.Scanner для чтения из NUMERIC колонки
func (m *Money) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*m = 0
		return nil
	case []byte:
		parsed, err := ParseMoney(string(v))
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	case string:
		parsed, err := ParseMoney(v)
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	case int64:
		*m = Money(v * 100)
		return nil
	case float64:
		// lib/pq отдает NUMERIC как []byte, но на всякий случай
		*m = Money(int64(v*100 + 0.5))
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidMoney, src)
	}
}
