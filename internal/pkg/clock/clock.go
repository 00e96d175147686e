package clock

import (
	"fmt"
	"time"
)

// Clock абстракция "текущего операционного времени". Генератор id и
// расчет сроков доставки берут время только отсюда, прямых вызовов
// time.Now() в бизнес-логике нет.
type Clock interface {
	Now() time.Time
}

// System часы в операционной таймзоне платформы.
type System struct {
	loc *time.Location
}

func NewSystem(timezone string) (*System, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load operating timezone %q: %w", timezone, err)
	}
	return &System{loc: loc}, nil
}

func (s *System) Now() time.Time {
	return time.Now().In(s.loc)
}

// Fixed часы с фиксированным временем для тестов.
type Fixed struct {
	t time.Time
}

func NewFixed(t time.Time) *Fixed {
	return &Fixed{t: t}
}

func (f *Fixed) Now() time.Time {
	return f.t
}
