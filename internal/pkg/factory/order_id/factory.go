package order_id

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// формат поминутный, поэтому id лексикографически растут для заказов
// из разных минут. Внутри минуты уникальность не гарантируется,
// дубликат отсекает хранилище на create.
const timeLayout = "200601021504"

// суффикс двузначный, как в исходной платформе
const suffixSpace = 100

type Clock interface {
	Now() time.Time
}

// Generator выдает человекочитаемые id заказов вида PD202608311245-07.
type Generator struct {
	prefix string
	clock  Clock

	mu  sync.Mutex
	rnd *rand.Rand
}

func New(prefix string, clock Clock, src rand.Source) *Generator {
	return &Generator{
		prefix: prefix,
		clock:  clock,
		rnd:    rand.New(src),
	}
}

// Generate чистая функция от часов и генератора случайных чисел,
// не падает никогда.
func (g *Generator) Generate() string {
	now := g.clock.Now()

	g.mu.Lock()
	suffix := g.rnd.Intn(suffixSpace)
	g.mu.Unlock()

	return fmt.Sprintf("%s%s-%02d", g.prefix, now.Format(timeLayout), suffix)
}
