package metrics

// Package-level helpers recording on the global manager. Handlers and
// adapters call these directly instead of holding a Manager reference.

// RecordRefreshCycle increments the refresh cycle counter.
func RecordRefreshCycle() {
	globalManager.refreshCycles.Inc()
}

// RecordRefreshCycleDuration records a full cycle duration in milliseconds.
func RecordRefreshCycleDuration(ms float64) {
	globalManager.refreshCycleDuration.Observe(ms)
}

// IncRefreshInFlight marks a cycle as started.
func IncRefreshInFlight() {
	globalManager.refreshInFlight.Inc()
}

// DecRefreshInFlight marks a cycle as finished.
func DecRefreshInFlight() {
	globalManager.refreshInFlight.Dec()
}

// RecordFetchError counts a failed store fetch for a collection.
func RecordFetchError(collection string) {
	globalManager.fetchErrors.WithLabelValues(collection).Inc()
}

// UpdateSnapshotLastUnix records the time of the latest snapshot publish.
func UpdateSnapshotLastUnix(unix int64) {
	globalManager.snapshotLastUnix.Set(float64(unix))
}

// RecordSnapshotDiscarded counts a publish ignored after close.
func RecordSnapshotDiscarded() {
	globalManager.snapshotDiscarded.Inc()
}

// RecordAssignmentNormalized counts one normalized assignment.
func RecordAssignmentNormalized() {
	globalManager.assignmentsNormalized.Inc()
}

// RecordFieldDefaulted counts a field resolved by a default.
func RecordFieldDefaulted(field string) {
	globalManager.fieldsDefaulted.WithLabelValues(field).Inc()
}

// RecordInvertedInterval counts an assignment with end before start.
func RecordInvertedInterval() {
	globalManager.invertedIntervals.Inc()
}

// RecordStoreRequest counts a store request by path and outcome.
func RecordStoreRequest(path, outcome string) {
	globalManager.storeRequests.WithLabelValues(path, outcome).Inc()
}

// RecordStoreRequestLatency records store request latency in milliseconds.
func RecordStoreRequestLatency(ms float64) {
	globalManager.storeRequestLatency.Observe(ms)
}

// UpdateAssetCount sets the snapshot asset gauge.
func UpdateAssetCount(n int) {
	globalManager.assetCount.Set(float64(n))
}

// UpdateEngineerCount sets the snapshot engineer gauge.
func UpdateEngineerCount(n int) {
	globalManager.engineerCount.Set(float64(n))
}

// UpdateAssignmentCount sets the snapshot assignment gauge.
func UpdateAssignmentCount(n int) {
	globalManager.assignmentCount.Set(float64(n))
}

// UpdateAuditEntryCount sets the snapshot audit entry gauge.
func UpdateAuditEntryCount(n int) {
	globalManager.auditEntryCount.Set(float64(n))
}

// RecordHTTPRequest counts an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records an HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, ms float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(ms)
}
