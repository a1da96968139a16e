package ui

// DefaultQueueSize is the task buffer of a loop created by NewLoop(0)
const DefaultQueueSize = 64

// LogMsgTaskPanicked is logged when a task panics; the loop keeps running
const LogMsgTaskPanicked = "UI task panicked"
