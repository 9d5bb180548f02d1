package order

import "errors"

var (
	// ErrOrderNotFound возвращается, когда заказ не найден
	ErrOrderNotFound = errors.New("order.repository: order not found")

	// ErrDuplicateOrder возвращается при повторной вставке заказа с тем же order_id
	ErrDuplicateOrder = errors.New("order.repository: order already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("order.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("order.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("order.repository: failed to scan row")
)
