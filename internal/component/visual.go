// internal/component/visual.go
package component

// Shot — визуальная запись одного выстрела, без игрового эффекта.
type Shot struct {
	From, To Position
	TTL      float64 // Сколько времени эффекту осталось жить
}

// Expired reports whether the shot should be swept.
func (s *Shot) Expired() bool {
	return s.TTL <= 0
}
