package usage

import "time"

// usagePeriod is the rolling quota window.
const usagePeriod = 7 * 24 * time.Hour

func defaultUsage() Usage {
	return Usage{
		Plan:     "Free",
		Limit:    25,
		Used:     0,
		ResetsAt: time.Now().UTC().Add(usagePeriod),
	}
}
