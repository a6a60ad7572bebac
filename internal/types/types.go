// internal/types/types.go
package types

// EntityID — уникальный идентификатор сущности в симуляции.
// Ноль никогда не выдаётся и означает "нет сущности".
type EntityID uint64
