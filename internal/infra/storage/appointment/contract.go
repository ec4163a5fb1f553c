package appointment

import (
	"github.com/Darioantonio20/BarberPlatform/pkg/dbmetrics"
)

// Database interfaces reused from dbmetrics so the repository works both
// with the metrics-wrapped pool and a bare *sql.DB.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
