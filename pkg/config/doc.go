/*
Package config provides the configuration surface of storconn: immutable
per-backend endpoint descriptions plus a top-level document that can hold many
named endpoints.

# Configuration Sources

Multi-source hierarchy with precedence:

	Environment Variables (STORCONN_*)
	            │
	Configuration Files (YAML)
	            │
	Default Values (compiled-in)

# Endpoint Descriptions

Each endpoint names exactly one backend kind and carries the matching section:

	endpoints:
	  - name: archive
	    kind: s3
	    s3:
	      region: us-east-1
	  - name: legacy-drop
	    kind: ftp
	    ftp:
	      host: ftp.example.com
	      explicit_tls: true
	  - name: ingest
	    kind: sftp
	    sftp:
	      host: sftp.example.com
	      username: ingest
	      private_key_path: /etc/storconn/ingest.pem

Backend configs are pure data validated only for required fields; no network
I/O happens at validation time. Clone returns an independent copy, and every
accessor that leaves this package hands out copies, so external mutation can
never reach a connection manager's internal snapshot.
*/
package config
