package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
)

func get(apiURL, token, path string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, apiURL+path, nil)
	if err != nil {
		return nil, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode, string(data))
	}
	return resp, nil
}

func runSummary(apiURL, token string, out io.Writer) error {
	resp, err := get(apiURL, token, "/api/v1/summary")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var summary struct {
		TotalOwedToUser string `json:"totalOwedToUser"`
		TotalUserOwes   string `json:"totalUserOwes"`
		NetBalance      string `json:"netBalance"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return err
	}

	fmt.Fprintf(out, "Owed to you:  %s\n", summary.TotalOwedToUser)
	fmt.Fprintf(out, "You owe:      %s\n", summary.TotalUserOwes)
	fmt.Fprintf(out, "Net balance:  %s\n", summary.NetBalance)
	return nil
}

func runUpcoming(apiURL, token string, out io.Writer) error {
	resp, err := get(apiURL, token, "/api/v1/reminders/upcoming")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var entries []struct {
		Record struct {
			CounterpartyName string `json:"counterpartyName"`
			Direction        string `json:"direction"`
			Amount           string `json:"amount"`
		} `json:"record"`
		FireAt string `json:"fireAt"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "No reminders in the next seven days.")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%s  %s %s (%s)\n", e.FireAt, e.Record.CounterpartyName, e.Record.Amount, e.Record.Direction)
	}
	return nil
}

func runExport(apiURL, token, format, outPath string) error {
	if format != "csv" && format != "html" {
		return fmt.Errorf("format must be csv or html")
	}

	resp, err := get(apiURL, token, "/api/v1/export?format="+format)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if outPath == "" {
		outPath = "iou-export." + format
		if cd := resp.Header.Get("Content-Disposition"); cd != "" {
			if _, params, err := mime.ParseMediaType(cd); err == nil && params["filename"] != "" {
				outPath = params["filename"]
			}
		}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, outPath)
	return nil
}

func runUnlock(apiURL, pin string, out io.Writer) error {
	body, _ := json.Marshal(map[string]string{"pin": pin})
	resp, err := http.Post(apiURL+"/api/v1/auth/pin/verify", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("http %d: %s", resp.StatusCode, string(data))
	}

	var token struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return err
	}
	fmt.Fprintln(out, token.Token)
	return nil
}
