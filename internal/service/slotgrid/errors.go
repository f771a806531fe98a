package slotgrid

import "errors"

var (
	// ErrInvalidSchedule возвращается при некорректном расписании площадки
	// (нечитаемое время работы, закрытие не позже открытия, пустые дни)
	ErrInvalidSchedule = errors.New("slotgrid.service: invalid venue schedule")

	// ErrGenerationFailed возвращается при ошибке материализации сетки
	// Площадка может остаться с неполной сеткой и требует повторной генерации;
	// ошибка обязана дойти до потока редактирования расписания
	ErrGenerationFailed = errors.New("slotgrid.service: grid generation failed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("slotgrid.service: internal error")
)
