/*
Package config loads job defaults for treepush.

	            +-------------+
	            |   Config    |
	            | (defaults)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   HCL    | |   JSON   |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Reads .treepush.yaml, .treepush.hcl or .treepush.json
- Rejects unknown fields instead of ignoring typos
- Fills defaults and turns the result into an upload.Job

🔄 Flow:
1. Find picks the config file in a directory
2. LoadConfig parses it by extension
3. Validate fills defaults and checks values
4. Job merges in the token, which never lives in a file

In HCL the repository id is the block label and the environment is
available as env.NAME:

	repository "acme/weights" {
	  kind       = "model"
	  visibility = "private"
	}

	source      = "./out"
	granularity = "per-first-level-folder"
	commit_message = "upload from ${env.USER}"

	ignore {
	  presets = ["pycache", "log"]
	}

🔍 Example:

	cfg, err := config.LoadConfig(ctx, config.Find("."))
	if err != nil {
		return err
	}
	ack := svc.Submit(cfg.Job(token))
*/
package config
