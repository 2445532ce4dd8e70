package store

const (
	findUserByUsername = `SELECT user_id, username, email, name, password_hash, verified, enabled, last_login, ultimate_login, created_at
    FROM users
    WHERE username = $1;`

	findUserByEmail = `SELECT user_id, username, email, name, password_hash, verified, enabled, last_login, ultimate_login, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, username, email, name, password_hash, verified, enabled, last_login, ultimate_login, created_at
    FROM users
    WHERE user_id = $1;`

	updateLastLogin = `UPDATE users
    SET last_login = $2
    WHERE user_id = $1;`

	shiftLoginDates = `UPDATE users
    SET ultimate_login = last_login, last_login = $2
    WHERE user_id = $1
    RETURNING ultimate_login;`

	updatePassword = `UPDATE users
    SET password_hash = $2
    WHERE user_id = $1;`

	createSession = `INSERT INTO sessions (session_id, user_id)
    VALUES ($1, $2)
    RETURNING session_id, user_id, created_at;`

	findSessionByID = `SELECT session_id, user_id, created_at
    FROM sessions
    WHERE session_id = $1;`

	deleteSession = `DELETE FROM sessions
    WHERE session_id = $1;`

	createPasswordReset = `INSERT INTO password_resets (id, user_id, reset_key)
    VALUES ($1, $2, $3)
    RETURNING id, user_id, reset_key, created_at;`

	findPasswordResetByID = `SELECT id, user_id, reset_key, created_at
    FROM password_resets
    WHERE id = $1;`

	findPasswordResetByKey = `SELECT id, user_id, reset_key, created_at
    FROM password_resets
    WHERE reset_key = $1;`

	deletePasswordReset = `DELETE FROM password_resets
    WHERE id = $1
    RETURNING id, user_id, reset_key, created_at;`

	deletePasswordResetsByUser = `DELETE FROM password_resets
    WHERE user_id = $1;`

	deletePasswordResetsCreatedBefore = `DELETE FROM password_resets
    WHERE created_at < $1;`
)
