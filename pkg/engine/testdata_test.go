package engine

// rugToken defines onlyOwner before an owner-gated mint, then sets a fee and blacklists.
const rugToken = `pragma solidity ^0.8.0;

contract RugToken {
    address public owner;
    mapping(address => bool) public blacklist;

    modifier onlyOwner() {
        require(msg.sender == owner, "not owner");
        _;
    }

    function mint(address to) public onlyOwner {
        _balances[to] += 1e24;
    }

    function configure(address addr) external onlyOwner {
        setFee(10);
        blacklist[addr] = true;
    }
}
`

// plainToken has no risky constructs.
const plainToken = `pragma solidity ^0.8.0;

contract PlainToken {
    mapping(address => uint256) private _balances;

    function transfer(address to, uint256 amount) external returns (bool) {
        _balances[msg.sender] -= amount;
        _balances[to] += amount;
        return true;
    }

    function balanceOf(address account) public view returns (uint256) {
        return _balances[account];
    }
}
`
