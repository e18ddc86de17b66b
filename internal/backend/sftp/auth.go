package sftp

import (
	"os"

	"golang.org/x/crypto/ssh"

	errs "github.com/storconn/storconn/pkg/errors"
	"github.com/storconn/storconn/pkg/types"
)

// authMethods assembles the SSH auth methods from the endpoint config:
// private key (with passphrase fallback for encrypted keys) first, password
// second.
func (a *Adapter) authMethods() ([]ssh.AuthMethod, error) {
	var methods []ssh.AuthMethod

	if a.cfg.PrivateKeyPath != "" {
		keyBytes, err := os.ReadFile(a.cfg.PrivateKeyPath)
		if err != nil {
			return nil, errs.New(errs.KindConfigInvalid, "failed to read private key").
				WithBackend(types.BackendSFTP).
				WithCause(err)
		}

		signer, err := ssh.ParsePrivateKey(keyBytes)
		if err != nil {
			if _, missing := err.(*ssh.PassphraseMissingError); missing && a.cfg.Passphrase != "" {
				signer, err = ssh.ParsePrivateKeyWithPassphrase(keyBytes, []byte(a.cfg.Passphrase))
			}
			if err != nil {
				return nil, errs.New(errs.KindConfigInvalid, "failed to parse private key").
					WithBackend(types.BackendSFTP).
					WithCause(err)
			}
		}
		methods = append(methods, ssh.PublicKeys(signer))
	}

	if a.cfg.Password != "" {
		methods = append(methods, ssh.Password(a.cfg.Password))
	}

	if len(methods) == 0 {
		return nil, errs.New(errs.KindConfigInvalid, "no authentication method configured").
			WithBackend(types.BackendSFTP)
	}
	return methods, nil
}
