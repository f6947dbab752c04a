package service

import (
	"log"
)

func (use *PhotoServiceImplement) taskWorker(i int) {
	defer use.wg.Done()
	for {
		select {
		case task, ok := <-use.Task_queue:
			if !ok {
				log.Printf("[INFO] [Photo-Bot] [Worker: %v] Task channel closed, stopping worker", i)
				return
			}
			task()
		case <-use.closechan:
			return
		}
	}
}

func (use *PhotoServiceImplement) StopWorkers() {
	close(use.closechan)
	close(use.Task_queue)
	use.wg.Wait()
	log.Printf("[DEBUG] [Photo-Bot] Successful stop task-workers")
}
