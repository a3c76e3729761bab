package memstore

import (
	"context"
	"fmt"
)

// TempSelection возвращает снимок кураторского списка видео
// для временных пользователей.
func (s *Store) TempSelection(ctx context.Context) ([]int, error) {
	const op = "memstore.TempSelection"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]int, len(s.tempSelection))
	copy(res, s.tempSelection)
	return res, nil
}

// ReplaceTempSelection целиком заменяет кураторский список.
// Проверку лимита выполняет движок доступа, хранилище проверяет только
// существование видео.
func (s *Store) ReplaceTempSelection(ctx context.Context, ids []int) error {
	const op = "memstore.ReplaceTempSelection"
	if err := ctxErr(ctx, op); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		if !s.videoExistsLocked(id) {
			return fmt.Errorf("%s: %w", op, ErrVideoNotFound)
		}
	}

	s.tempSelection = make([]int, len(ids))
	copy(s.tempSelection, ids)
	return nil
}
