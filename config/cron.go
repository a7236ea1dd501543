package config

// Map of job names to job functions
type CronJob struct {
	Schedule string
	Job      func(...string)
}

// CronJobs holds statically configured jobs. Packages can also register
// jobs at init time through the cron registry.
var CronJobs = map[string]CronJob{
	// Add more jobs here
}
