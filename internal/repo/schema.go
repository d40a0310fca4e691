package repo

const tableRecords = "dispensing_records"

const (
	colID              = "id"
	colDispenserNo     = "dispenser_no"
	colNozzleNo        = "nozzle_no"
	colFuelGrade       = "fuel_grade"
	colVolume          = "volume"
	colAmount          = "amount"
	colPaymentMode     = "payment_mode"
	colVehicleNumber   = "vehicle_number"
	colTransactionDate = "transaction_date"
	colProofPath       = "payment_proof_path"
	colCreatedAt       = "created_at"
)
