package domain

// Snapshot is everything the projection engine reads for one business,
// fetched once per request.
type Snapshot struct {
	Config        BusinessScheduleConfig
	WeeklyPattern WeeklyPattern
	ManualPosts   []ManualPost
	Content       []ContentItem
	PostedRecords []PostedRecord
}
