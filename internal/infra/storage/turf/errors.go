package turf

import "errors"

var (
	// ErrTurfNotFound возвращается, когда турф не найден
	// (в том числе когда турф не принадлежит указанной площадке)
	ErrTurfNotFound = errors.New("turf.repository: turf not found")

	// ErrDuplicateName возвращается при нарушении уникальности имени турфа внутри площадки
	ErrDuplicateName = errors.New("turf.repository: turf name already exists in venue")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("turf.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("turf.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("turf.repository: failed to scan row")
)
