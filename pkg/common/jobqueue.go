package common

import "sync"

type Job func() error

// JobQueue runs jobs one by one on a background goroutine, in the order they were enqueued.
// Failed jobs are logged and don't stop the queue.
type JobQueue struct {
	jobsChannel chan Job
	waitGroup   sync.WaitGroup
	stopOnce    sync.Once
	logger      Logger
}

func NewJobQueue(capacity int, logger Logger) *JobQueue {
	queue := &JobQueue{
		jobsChannel: make(chan Job, capacity),
		logger:      logger,
	}
	queue.waitGroup.Add(1)
	go queue.run()
	return queue
}

// Enqueue blocks if the queue is full. Must not be called after Stop.
func (j *JobQueue) Enqueue(job Job) {
	j.jobsChannel <- job
}

// Stop waits for the already enqueued jobs to finish.
func (j *JobQueue) Stop() {
	j.stopOnce.Do(func() {
		close(j.jobsChannel)
	})
	j.waitGroup.Wait()
}

func (j *JobQueue) run() {
	defer j.waitGroup.Done()
	for job := range j.jobsChannel {
		err := job()
		if err != nil {
			j.logger.Log("failed to process a job: " + err.Error())
		}
	}
}
