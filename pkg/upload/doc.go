/*
Package upload runs jobs that push a local directory tree to a remote repository.

	+-----------+      +---------------+      +-----------+
	|  Service  | ---> |  Orchestrator | ---> |  Gateway  |
	| (1 at a   |      |  (lifecycle)  |      | (remote)  |
	|   time)   |      +-------+-------+      +-----------+
	+-----+-----+              |
	      |              +-----+-----+
	      +------------> | log.Sink  |
	                     +-----------+

🎯 Purpose:
- Validates a Job before anything leaves the machine
- Splits the source into units and dispatches them one by one
- Keeps at most one job running and rejects the rest as busy

🔄 Flow:
 1. idle -> validating: paths, repository id, token, ignore patterns
 2. validating -> authenticating (or completed when nothing survives the filter)
 3. authenticating -> ensuring-repository: create when missing, tolerate a conflict
 4. ensuring-repository -> uploading: units in lexicographic order
 5. uploading -> completed | failed | cancelled

Cancellation is cooperative. A CancelToken is checked before the first unit
and after every unit, so a unit in flight always finishes and everything
after it is marked cancelled. A cancel seen after the last unit still ends
the job cancelled. A failed unit never stops the ones after it.

Each unit lists its files again right before it is sent. A unit emptied
while earlier units ran is skipped-empty.

🤝 Interfaces:
- remote.Gateway: authentication, repository creation, transfers
- log.Logger: every transition and unit result lands in its Sink
- metrics.Metrics: job and unit counters, nil to disable

🔍 Example:

	svc := upload.NewService(ctx, gateway, upload.WithServiceLogger(logger))
	defer svc.Close()

	ack := svc.Submit(upload.Job{
		SourceDirectory: "/data/run-42",
		RepositoryID:    "acme/run-42",
		Kind:            remote.KindDataset,
		Visibility:      remote.Private,
		Granularity:     upload.PerFirstLevelFolder,
		Token:           token,
	})
	if !ack.Accepted() {
		return errors.New(ack.String())
	}
	outcome, err := svc.Wait(ctx, ack.JobID)
*/
package upload
