package service

import (
	"context"
	"log"
)

// step — пара (действие, компенсация). Компенсация может быть nil, если
// действие нечего откатывать.
type step struct {
	name       string
	run        func(ctx context.Context) error
	compensate func(ctx context.Context)
}

// runSteps выполняет шаги по порядку; при первом отказе запускает компенсации
// уже выполненных шагов в обратном порядке и возвращает исходную ошибку.
// Отказ самой компенсации только логируется — принятый пробел надёжности.
func runSteps(ctx context.Context, steps []step) error {
	done := make([]step, 0, len(steps))
	for _, st := range steps {
		if err := st.run(ctx); err != nil {
			for i := len(done) - 1; i >= 0; i-- {
				if done[i].compensate == nil {
					continue
				}
				log.Printf("service: compensating step %q after %q failed", done[i].name, st.name)
				done[i].compensate(ctx)
			}
			return err
		}
		done = append(done, st)
	}
	return nil
}
