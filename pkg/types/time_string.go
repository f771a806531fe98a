package types

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// minutesPerDay количество минут в сутках
const minutesPerDay = 24 * 60

// TimeString время в формате HH:MM (например, "10:00")
// Используется для хранения времени без даты (начало слота, время работы площадки)
// Поддерживает сканирование из БД (колонки TIME) и запись обратно
//
// Специальное значение "24:00" допустимо как граница конца дня (конец последнего
// слота), но не как время начала
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает дату и секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString создает TimeString из строки с валидацией
// Принимает "HH:MM" и "HH:MM:SS" (секунды отбрасываются)
func NewTimeStringFromString(s string) (TimeString, error) {
	// Отбрасываем секунды, если они есть (Postgres TIME возвращает HH:MM:SS)
	if strings.Count(s, ":") == 2 {
		s = s[:strings.LastIndex(s, ":")]
	}

	t := TimeString(s)
	if _, err := t.Minutes(); err != nil {
		return "", err
	}
	return t, nil
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Minutes возвращает количество минут с полуночи
// Разбор выполняется вручную, чтобы поддержать границу "24:00"
func (t TimeString) Minutes() (int, error) {
	var hh, mm int
	if _, err := fmt.Sscanf(string(t), "%d:%d", &hh, &mm); err != nil {
		return 0, fmt.Errorf("types: invalid time string %q: %v", string(t), err)
	}
	if hh < 0 || hh > 24 || mm < 0 || mm > 59 || (hh == 24 && mm != 0) {
		return 0, fmt.Errorf("types: invalid time string %q: out of range", string(t))
	}
	if len(t) != 5 || t[2] != ':' {
		return 0, fmt.Errorf("types: invalid time string %q: expected HH:MM", string(t))
	}
	return hh*60 + mm, nil
}

// AddMinutes возвращает время, сдвинутое на m минут вперед
// Результат не выходит за пределы суток: значения больше 24:00 обрезаются до 24:00,
// чтобы сравнения со слотами оставались корректными в конце дня
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}

	total += m
	if total < 0 {
		total = 0
	}
	if total > minutesPerDay {
		total = minutesPerDay
	}

	return fromMinutes(total), nil
}

// IsBefore возвращает true, если t строго раньше other
// Некорректные значения считаются несравнимыми (false)
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a > b
}

// Equal возвращает true, если времена совпадают
func (t TimeString) Equal(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	if errA != nil || errB != nil {
		return t == other
	}
	return a == b
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД
// Postgres возвращает TIME как строку "HH:MM:SS" или как time.Time,
// в зависимости от драйвера
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", src)
	}
}

// fromMinutes собирает TimeString из количества минут с полуночи
func fromMinutes(total int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60))
}
