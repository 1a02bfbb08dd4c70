package schedule

import "github.com/m04kA/SMC-RentalService/pkg/txmanager"

// DBExecutor интерфейс для работы с БД (поддерживает *sql.DB и *sql.Tx)
type DBExecutor = txmanager.DBExecutor
